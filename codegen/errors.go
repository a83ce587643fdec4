// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package codegen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfig matches every [*ConfigError] with [errors.Is].
var ErrConfig = errors.New("codegen: invalid configuration")

// ErrorKind classifies a configuration error.
type ErrorKind int

const (
	KindNilGenerator ErrorKind = iota + 1
	KindConstructorReturn
	KindConstructorName
	KindDuplicateID
	KindInvalidType
	KindInvalidModifier
	KindInvalidID
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNilGenerator:
		return "nil generator"
	case KindConstructorReturn:
		return "constructor return type"
	case KindConstructorName:
		return "constructor name"
	case KindDuplicateID:
		return "duplicate id"
	case KindInvalidType:
		return "invalid type"
	case KindInvalidModifier:
		return "invalid modifier"
	case KindInvalidID:
		return "invalid id"
	default:
		return "unknown"
	}
}

// ConfigError reports a generator configured incorrectly by its caller.
// Registration paths panic with a *ConfigError; use [Catch] to turn the
// panic back into an error.
type ConfigError struct {
	Kind ErrorKind

	// Owner names the pipeline or class being configured (may be empty).
	Owner string

	// Member names the offending unit (may be empty).
	Member string

	// Detail describes the mismatch.
	Detail string
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("codegen: ")
	b.WriteString(e.Kind.String())
	if e.Owner != "" {
		fmt.Fprintf(&b, " in %q", e.Owner)
	}
	if e.Member != "" {
		fmt.Fprintf(&b, ": member %q", e.Member)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Is reports whether target is [ErrConfig].
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// Catch runs fn and returns the *ConfigError it panicked with, if any.
// Any other panic is propagated.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*ConfigError)
			if !ok {
				panic(r)
			}
			err = ce
		}
	}()
	fn()
	return nil
}
