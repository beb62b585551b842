package ledger

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

const exportDateLayout = "2006-01-02"

var exportHeader = []string{
	"書籍ID", "書名", "貸出日", "返却日", "予定日数", "実日数", "料金", "支払日",
}

// WritePaymentsCSV は支払い履歴を CP932 の CSV として書き出す。
// Windows の Excel でそのまま開ける形式（カンマ区切り・Shift_JIS）。
func WritePaymentsCSV(w io.Writer, records []PaymentRecord) error {
	var b bytes.Buffer
	enc := japanese.ShiftJIS.NewEncoder() // Windowsの「ANSI（CP932）」相当
	cw := csv.NewWriter(transform.NewWriter(&b, enc))

	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, p := range records {
		row := []string{
			p.BookID,
			p.Title,
			p.BorrowedDate.Format(exportDateLayout),
			p.ReturnedDate.Format(exportDateLayout),
			strconv.Itoa(p.PlannedDays),
			strconv.Itoa(p.ActualDays),
			strconv.Itoa(p.TotalCost),
			p.PaymentDate.Format(exportDateLayout),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	_, err := w.Write(b.Bytes())
	return err
}
