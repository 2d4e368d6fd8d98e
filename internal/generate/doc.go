// Package generate builds synthetic identity and bank card numbers for test
// fixtures. Every number it returns passes checksum validation, is built
// from reference-data prefixes, and is random in its remaining digits.
//
// Generated numbers are never logged in the clear; the generator logs a
// keyed fingerprint and a masked form instead.
//
// Example Usage:
//
//	gen := generate.NewGenerator(store, logger)
//	idNumber, err := gen.IDNumber(ctx, generate.IDRequest{Area: "西安市", Match: refdata.MatchFuzzy})
//	card, err := gen.BankCard(ctx, generate.CardRequest{Bank: "CMB", CardType: refdata.CardDebit})
package generate
