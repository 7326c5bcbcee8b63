package importer

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/anthurium-ai/txn-classify/internal/classify"
)

// ReadCSV parses a bank-export CSV into classification inputs. Column order
// is free; columns are resolved by header name, case-insensitively. Rows with
// an unparseable amount are skipped and counted rather than failing the file.
func ReadCSV(r io.Reader) (inputs []classify.Input, skipped int, err error) {
	br := bufio.NewReader(r)
	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, 0, errors.Wrap(err, "read header")
	}
	idx := indexMap(header)

	for {
		row, err2 := cr.Read()
		if err2 == io.EOF {
			break
		}
		if err2 != nil {
			return nil, skipped, errors.Wrap(err2, "read row")
		}

		get := func(names ...string) string {
			for _, name := range names {
				if i, ok := idx[strings.ToLower(name)]; ok && i >= 0 && i < len(row) {
					if v := strings.TrimSpace(row[i]); v != "" {
						return v
					}
				}
			}
			return ""
		}

		in := classify.Input{
			MerchantName:             get("Merchant Name", "Merchant"),
			Description:              get("Transaction Details", "Description", "Details"),
			PaymentChannel:           get("Payment Channel", "Channel"),
			AccountType:              get("Account Type", "Account"),
			AccountSubtype:           get("Account Subtype"),
			ImporterCategoryPrimary:  get("Category"),
			ImporterCategoryDetailed: get("Detailed Category", "Subcategory"),
			TransactionTypeIndicator: get("Transaction Type", "Type"),
			ImportSource:             classify.SourceCSV,
		}

		if amtStr := get("Amount"); amtStr != "" {
			a, err2 := decimal.NewFromString(strings.ReplaceAll(amtStr, ",", ""))
			if err2 != nil {
				skipped++
				continue
			}
			in.Amount = &a
		}
		if in.MerchantName == "" && in.Description == "" && in.Amount == nil {
			skipped++
			continue
		}
		inputs = append(inputs, in)
	}
	return inputs, skipped, nil
}

func indexMap(header []string) map[string]int {
	m := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		m[strings.ToLower(h)] = i
	}
	return m
}
