// Package parser provides the platform parser contract and the ordered
// regex rule tables the platform parsers are built from.
//
// Each platform (GitHub, Twitter/X, LinkedIn, Facebook, Instagram, YouTube,
// email, phone) lives in its own sub-package and exposes a Parser that
// knows which schemes and hostnames it serves and how to turn a matching
// URL into a typed record.
package parser
