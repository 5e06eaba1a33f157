// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ident generates identifiers for survey responses.

NewResponseID returns a time-sortable identifier:

	1712345678901-9f2c41ab03de

The prefix is the submission instant in unix milliseconds; the suffix is
48 bits from crypto/rand. GenerateID produces the raw random hex portion
and can be used on its own where a plain random ID suffices.
*/
package ident
