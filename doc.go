// Package positions normalizes portfolio spreadsheets into a canonical list of positions
// and reviews them.
//
// A portfolio comes either as a canonical spreadsheet (see [RequiredColumns]) or as a vendor
// export, parsed by the vendor package and completed with reference spreadsheets by the
// reference package. Either way the result is a slice of [Position] that [Analyze] turns into
// a [Summary]: totals, estimated annual margin and cost, allocations and review flags.
//
// This package serves as the foundational logic for the `pa` command-line tool and its HTTP
// service, which both go through the pipeline package.
package positions
