// Package germany bundles the trading holidays of the German exchanges
// (Eurex, Frankfurt Stock Exchange, Xetra), 2019 through 2027.
//
// All three venues share one closure schedule: New Year's Day, Good Friday,
// Easter Monday, Labour Day, Christmas Eve, Christmas Day, Boxing Day and
// New Year's Eve. Dates falling on weekends are kept in the lists; the
// calendar package already rejects weekends before consulting them.
package germany

var exchangeHolidays = []string{
	// 2019
	"2019-01-01", "2019-04-19", "2019-04-22", "2019-05-01",
	"2019-12-24", "2019-12-25", "2019-12-26", "2019-12-31",
	// 2020
	"2020-01-01", "2020-04-10", "2020-04-13", "2020-05-01",
	"2020-12-24", "2020-12-25", "2020-12-26", "2020-12-31",
	// 2021
	"2021-01-01", "2021-04-02", "2021-04-05", "2021-05-01",
	"2021-12-24", "2021-12-25", "2021-12-26", "2021-12-31",
	// 2022
	"2022-01-01", "2022-04-15", "2022-04-18", "2022-05-01",
	"2022-12-24", "2022-12-25", "2022-12-26", "2022-12-31",
	// 2023
	"2023-01-01", "2023-04-07", "2023-04-10", "2023-05-01",
	"2023-12-24", "2023-12-25", "2023-12-26", "2023-12-31",
	// 2024
	"2024-01-01", "2024-03-29", "2024-04-01", "2024-05-01",
	"2024-12-24", "2024-12-25", "2024-12-26", "2024-12-31",
	// 2025
	"2025-01-01", "2025-04-18", "2025-04-21", "2025-05-01",
	"2025-12-24", "2025-12-25", "2025-12-26", "2025-12-31",
	// 2026
	"2026-01-01", "2026-04-03", "2026-04-06", "2026-05-01",
	"2026-12-24", "2026-12-25", "2026-12-26", "2026-12-31",
	// 2027
	"2027-01-01", "2027-03-26", "2027-03-29", "2027-05-01",
	"2027-12-24", "2027-12-25", "2027-12-26", "2027-12-31",
}

// EurexHolidays lists Eurex trading holidays as ISO dates.
var EurexHolidays = exchangeHolidays

// FrankfurtHolidays lists Frankfurt Stock Exchange trading holidays.
var FrankfurtHolidays = exchangeHolidays

// XetraHolidays lists Xetra trading holidays.
var XetraHolidays = exchangeHolidays
