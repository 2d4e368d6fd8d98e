// Package checksum computes and verifies check digits for two identifier
// families:
//   - 18-character national identity numbers (ISO 7064 MOD 11-2 style weighted sum)
//   - bank card numbers (Luhn)
//
// Everything here is pure and allocation-light; functions are safe for
// concurrent use and never log or touch I/O.
//
// Example Usage:
//
//	code, ok := checksum.IDCheckCode("32012419870101001") // '5', true
//	valid := checksum.ValidCardNumber("4391880006990109")  // true
package checksum
