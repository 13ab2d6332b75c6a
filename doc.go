// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package punycode implements the Punycode encoding defined by RFC 3492:
// a bootstring encoding that represents a sequence of Unicode code points
// losslessly using only the letters a-z, the digits 0-9, and a hyphen
// delimiter.
//
// The package operates on a single label already reduced to a sequence of
// Unicode code points. It performs no Unicode normalization, no IDNA label
// splitting or joining, and no handling of the "xn--" ACE prefix; callers
// that need full internationalized domain name processing should use an
// IDNA library instead.
package punycode
