// Package investmate provides the building blocks of a personal investment
// tracker kept in plain text files.
//
// The core functionalities include:
//   - User Directory: a single append-only file of accounts
//     ("email,password,fullName"), with case-insensitive email lookup.
//   - Investment Ledger: one file per user ("id,name,value,type"), named
//     after the user's email. Edits and removals rewrite the whole file.
//   - Services: AccountService registers and logs users in,
//     PortfolioService adds, edits and removes the assets of a logged-in user.
//   - Zakat: a pure estimate of the 2.5% levy on the numeric asset values.
//   - Reports: data for the compliance and financial reports, a portfolio
//     summary, and a JSON document that can be queried with JSONPath.
//
// Files are read and written in full by a single process. There is no locking
// and no protection against two processes writing the same file.
//
// This package serves as the foundational logic for the `investmate`
// command-line tool.
package investmate
