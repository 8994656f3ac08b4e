package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

// SeedAccounts returns the built-in four-account sample dataset. The process
// is reseeded from it on every start; nothing is ever persisted.
func SeedAccounts() []*Account {
	return []*Account{
		seedAccount("Jonas Schmedtmann", "1.2", "1111", "EUR", "pt-PT",
			[]int64{200, 450, -400, 3000, -650, -130, 70, 1300},
			[]string{
				"2019-11-18T21:31:17.178Z",
				"2019-12-23T07:42:02.383Z",
				"2020-01-28T09:15:04.904Z",
				"2020-04-01T10:17:24.185Z",
				"2020-05-08T14:11:59.604Z",
				"2020-05-27T17:01:17.194Z",
				"2020-07-11T23:36:17.929Z",
				"2020-07-12T10:51:36.790Z",
			}),
		seedAccount("Jessica Davis", "1.5", "2222", "USD", "en-US",
			[]int64{5000, 3400, -150, -790, -3210, -1000, 8500, -30},
			[]string{
				"2019-11-01T13:15:33.035Z",
				"2019-11-30T09:48:16.867Z",
				"2019-12-25T06:04:23.907Z",
				"2020-01-25T14:18:46.235Z",
				"2020-02-05T16:33:06.386Z",
				"2020-04-10T14:43:26.374Z",
				"2020-06-25T18:49:59.371Z",
				"2020-07-26T12:01:20.894Z",
			}),
		seedAccount("Steven Thomas Williams", "0.7", "3333", "GBP", "en-GB",
			[]int64{200, -200, 340, -300, -20, 50, 400, -460},
			[]string{
				"2019-10-15T08:23:45.123Z",
				"2019-11-01T10:51:36.790Z",
				"2019-11-25T14:11:59.604Z",
				"2019-12-10T09:15:04.904Z",
				"2020-01-05T16:33:06.386Z",
				"2020-02-14T11:01:17.194Z",
				"2020-03-20T18:49:59.371Z",
				"2020-04-25T12:01:20.894Z",
			}),
		seedAccount("Sarah Smith", "1", "4444", "USD", "en-US",
			[]int64{430, 1000, 700, 50, 90},
			[]string{
				"2019-11-05T13:15:33.035Z",
				"2019-12-12T09:48:16.867Z",
				"2020-01-18T06:04:23.907Z",
				"2020-02-10T14:18:46.235Z",
				"2020-03-15T16:33:06.386Z",
			}),
	}
}

// LoadSeed reads an alternate account dataset from a JSON file. The file holds
// an array of accounts with parallel-free movement objects ({amount, date}).
func LoadSeed(path string) ([]*Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var accounts []*Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return accounts, nil
}

func seedAccount(owner, rate, pin, currency, locale string, amounts []int64, dates []string) *Account {
	a := &Account{
		Owner:        owner,
		InterestRate: decimal.RequireFromString(rate),
		PIN:          pin,
		Currency:     currency,
		Locale:       locale,
	}
	for i, amt := range amounts {
		date, err := time.Parse(time.RFC3339, dates[i])
		if err != nil {
			panic(err)
		}
		a.Append(decimal.NewFromInt(amt), date)
	}
	return a
}
