package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestFactory_CreateReport(t *testing.T) {
	t.Run("Should map each factory to its own report variant", func(t *testing.T) {
		var buf bytes.Buffer
		assert.IsType(t, &PDFReport{}, NewPDFFactory(&buf).CreateReport())
		assert.IsType(t, &ExcelReport{}, NewExcelFactory(&buf).CreateReport())
	})

	t.Run("Should return distinct instances from factories of the same variant", func(t *testing.T) {
		var buf bytes.Buffer
		first := NewPDFFactory(&buf).CreateReport()
		second := NewPDFFactory(&buf).CreateReport()

		require.NotNil(t, first)
		require.NotNil(t, second)
		assert.NotSame(t, first, second)
	})

	t.Run("Should return a fresh instance on every call of one factory", func(t *testing.T) {
		f := NewExcelFactory(nil)
		assert.NotSame(t, f.CreateReport(), f.CreateReport())
	})
}

func TestReport_GenerateReport(t *testing.T) {
	t.Run("Should emit the PDF notice", func(t *testing.T) {
		var buf bytes.Buffer
		NewPDFFactory(&buf).CreateReport().GenerateReport()
		assert.Equal(t, "generating PDF Report...\n", buf.String())
	})

	t.Run("Should emit the Excel notice", func(t *testing.T) {
		var buf bytes.Buffer
		NewExcelFactory(&buf).CreateReport().GenerateReport()
		assert.Equal(t, "generating Excel Report...\n", buf.String())
	})

	t.Run("Should repeat identical notices on repeated calls", func(t *testing.T) {
		for _, kind := range Kinds() {
			var buf bytes.Buffer
			f, err := NewFactory(kind, &buf)
			require.NoError(t, err)
			r := f.CreateReport()

			r.GenerateReport()
			once := buf.String()
			r.GenerateReport()

			assert.Equal(t, once+once, buf.String(), "kind %s", kind)
		}
	})

	t.Run("Should not panic when the sink fails", func(t *testing.T) {
		assert.NotPanics(t, func() {
			NewPDFFactory(failingWriter{}).CreateReport().GenerateReport()
		})
	})
}

func TestGenerate(t *testing.T) {
	t.Run("Should run both pipelines in call order without interference", func(t *testing.T) {
		var buf bytes.Buffer
		pdf := Generate(NewPDFFactory(&buf))
		excel := Generate(NewExcelFactory(&buf))

		assert.IsType(t, &PDFReport{}, pdf)
		assert.IsType(t, &ExcelReport{}, excel)
		assert.Equal(t, "generating PDF Report...\ngenerating Excel Report...\n", buf.String())
	})

	t.Run("Should accept any factory implementation", func(t *testing.T) {
		var buf bytes.Buffer
		factories := []Factory{NewExcelFactory(&buf), NewPDFFactory(&buf)}
		for _, f := range factories {
			Generate(f)
		}
		assert.Equal(t, "generating Excel Report...\ngenerating PDF Report...\n", buf.String())
	})
}

func TestNewFactory(t *testing.T) {
	t.Run("Should select the factory matching the kind", func(t *testing.T) {
		f, err := NewFactory(KindPDF, nil)
		require.NoError(t, err)
		assert.IsType(t, &PDFFactory{}, f)

		f, err = NewFactory(KindExcel, nil)
		require.NoError(t, err)
		assert.IsType(t, &ExcelFactory{}, f)
	})

	t.Run("Should reject an unknown kind", func(t *testing.T) {
		f, err := NewFactory(Kind("word"), nil)
		require.Error(t, err)
		assert.Nil(t, f)
		assert.ErrorIs(t, err, ErrUnknownKind)
	})
}

func TestParseKind(t *testing.T) {
	t.Run("Should parse names ignoring case and spaces", func(t *testing.T) {
		testCases := []struct {
			in       string
			expected Kind
		}{
			{"pdf", KindPDF},
			{"PDF", KindPDF},
			{" Excel ", KindExcel},
		}
		for _, tc := range testCases {
			k, err := ParseKind(tc.in)
			require.NoError(t, err, tc.in)
			assert.Equal(t, tc.expected, k)
		}
	})

	t.Run("Should return ErrUnknownKind for unsupported names", func(t *testing.T) {
		_, err := ParseKind("csv")
		assert.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("Should label kinds for notices", func(t *testing.T) {
		assert.Equal(t, "PDF", KindPDF.Label())
		assert.Equal(t, "Excel", KindExcel.Label())
		assert.Equal(t, []Kind{KindPDF, KindExcel}, Kinds())
	})
}
