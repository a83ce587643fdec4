// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package codegen

import "strings"

// Modifiers is a set of Java modifier flags. Values match the JVM access
// flags, so sets combine with bitwise OR.
type Modifiers uint32

// NoModifiers is the empty set.
const NoModifiers Modifiers = 0

const (
	Public       Modifiers = 0x0001
	Private      Modifiers = 0x0002
	Protected    Modifiers = 0x0004
	Static       Modifiers = 0x0008
	Final        Modifiers = 0x0010
	Synchronized Modifiers = 0x0020
	Volatile     Modifiers = 0x0040
	Transient    Modifiers = 0x0080
	Native       Modifiers = 0x0100
	Interface    Modifiers = 0x0200
	Abstract     Modifiers = 0x0400
	Strict       Modifiers = 0x0800
)

// keywords lists modifiers in the order the JLS recommends.
var keywords = []struct {
	mod  Modifiers
	word string
}{
	{Public, "public"},
	{Protected, "protected"},
	{Private, "private"},
	{Abstract, "abstract"},
	{Static, "static"},
	{Final, "final"},
	{Transient, "transient"},
	{Volatile, "volatile"},
	{Synchronized, "synchronized"},
	{Native, "native"},
	{Strict, "strictfp"},
	{Interface, "interface"},
}

// Known returns m with the bits that have no keyword cleared.
func (m Modifiers) Known() Modifiers {
	var known Modifiers
	for _, k := range keywords {
		known |= m & k.mod
	}
	return known
}

// Has reports whether every flag in m2 is set in m.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// String returns the space-separated keywords of m in canonical order.
// Unknown bits are ignored; the empty set renders as "".
func (m Modifiers) String() string {
	var words []string
	for _, k := range keywords {
		if m&k.mod != 0 {
			words = append(words, k.word)
		}
	}
	return strings.Join(words, " ")
}

// ParseModifiers converts keywords such as "public" or "static" into a
// modifier set.
func ParseModifiers(words ...string) (Modifiers, error) {
	var m Modifiers
	for _, w := range words {
		mod, ok := lookupModifier(strings.TrimSpace(w))
		if !ok {
			return 0, &ConfigError{Kind: KindInvalidModifier, Member: w, Detail: "unknown modifier keyword"}
		}
		m |= mod
	}
	return m, nil
}

func lookupModifier(word string) (Modifiers, bool) {
	for _, k := range keywords {
		if k.word == word {
			return k.mod, true
		}
	}
	return 0, false
}
