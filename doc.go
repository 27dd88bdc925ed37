// Package ipoworth computes what a fixed-dollar investment made at a
// company's initial public offering would be worth today.
//
// The package knows the IPO terms (date and offer price) of a small fixed
// set of companies. Given a ticker and an amount, it buys whole shares at
// the offer price, applies every stock split since, prices the resulting
// position at the latest close, and reports the present value together with
// the total and annualized return on investment.
//
// Market data (split history and latest close) comes from a [Quoter], an
// external collaborator. Two implementations ship with the module: one for
// Yahoo Finance and one for EODHD.com. A [Valuation] is a frozen snapshot:
// it is computed once from one round of quoter calls and never refreshed.
//
// This package is the foundation of the `ipow` command-line tool.
package ipoworth
