package ledger

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

func decodeCP932(t *testing.T, b []byte) string {
	t.Helper()
	r := transform.NewReader(bytes.NewReader(b), japanese.ShiftJIS.NewDecoder())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func Test_WritePaymentsCSV(t *testing.T) {
	records := []PaymentRecord{
		{
			PaymentID:    "P1",
			MemberID:     "M1",
			BookID:       "B1",
			Title:        "海辺のカフカ",
			BorrowedDate: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
			ReturnedDate: time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC),
			PlannedDays:  14,
			ActualDays:   19,
			TotalCost:    190,
			Paid:         true,
			PaymentDate:  time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePaymentsCSV(&buf, records))

	// 出力はUTF-8ではない（日本語ヘッダがCP932になっている）
	assert.False(t, strings.Contains(buf.String(), "書籍ID"))

	decoded := decodeCP932(t, buf.Bytes())
	rows, err := csv.NewReader(strings.NewReader(decoded)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"書籍ID", "書名", "貸出日", "返却日", "予定日数", "実日数", "料金", "支払日"}, rows[0])
	assert.Equal(t, []string{"B1", "海辺のカフカ", "2025-06-01", "2025-06-20", "14", "19", "190", "2025-06-20"}, rows[1])
}

func Test_WritePaymentsCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePaymentsCSV(&buf, nil))

	decoded := decodeCP932(t, buf.Bytes())
	rows, err := csv.NewReader(strings.NewReader(decoded)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1) // ヘッダのみ
}
