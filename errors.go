/* Copyright (C) 2020 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package nucseq

/* -------------------------------------------------------------------------- */

import "errors"

/* -------------------------------------------------------------------------- */

// ErrKmerTooLong means that a k-mer of more than MaxKmerLength symbols
// was requested.
var ErrKmerTooLong = errors.New("nucseq: k-mer longer than 32 symbols")

// ErrLengthMismatch means that an explicitly given k-mer length does not
// match the length of the input.
var ErrLengthMismatch = errors.New("nucseq: k-mer length mismatch")

// ErrAmbiguousSymbol means that an ambiguous symbol was encountered where
// only concrete symbols are allowed.
var ErrAmbiguousSymbol = errors.New("nucseq: ambiguous symbol in k-mer")

// ErrIndexOutOfRange means that a symbol position outside [0, k) was
// accessed.
var ErrIndexOutOfRange = errors.New("nucseq: k-mer index out of range")

// ErrInvalidArgument means that an argument violates a precondition, such
// as a negative k-mer length or a non-positive step size.
var ErrInvalidArgument = errors.New("nucseq: invalid argument")
