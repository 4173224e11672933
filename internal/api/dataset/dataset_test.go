package dataset

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/FACorreiaa/go-kemet-travel-planner/internal/types"
)

var header = []interface{}{
	" Name ", "Cultural Tip", "DESCRIPTION", "Entry Fee", "Address",
	"Location", "Duration", "Open Time", "Close Time", "Category", "Notes",
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeWorkbook(t *testing.T, rows ...[]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := row
		require.NoError(t, f.SetSheetRow("Sheet1", cellRef, &row))
	}

	path := filepath.Join(t.TempDir(), "Kemet_Data.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestExcelRepository_Attractions(t *testing.T) {
	path := writeWorkbook(t,
		header,
		[]interface{}{
			"  Giza Pyramids ", "Hire a licensed guide", "The last standing\nwonder   of the world",
			450, "Al Haram, Giza", "Giza", "3 hours", "8:00 AM", "5:00 PM", "Historical", "ignored",
		},
		[]interface{}{},
		[]interface{}{
			"Khan el-Khalili", "Bargain politely", "Historic bazaar", "Free", "El-Gamaleya",
			"Cairo", "2 hours", "10:00 AM", "11:00 PM", "Market",
		},
	)

	repo := NewExcelRepository(path, "", discardLogger())
	records, err := repo.Attractions(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, types.AttractionRecord{
		Name:        "Giza Pyramids",
		CulturalTip: "Hire a licensed guide",
		Description: "The last standing wonder of the world",
		EntryFee:    "450",
		Address:     "Al Haram, Giza",
		Location:    "Giza",
		Duration:    "3 hours",
		OpenTime:    "8:00 AM",
		CloseTime:   "5:00 PM",
		Category:    "Historical",
	}, records[0])
	assert.Equal(t, "Khan el-Khalili", records[1].Name)
	assert.Equal(t, "Market", records[1].Category)
}

func TestExcelRepository_MissingFile(t *testing.T) {
	repo := NewExcelRepository(filepath.Join(t.TempDir(), "missing.xlsx"), "", discardLogger())

	_, err := repo.Attractions(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataLoad)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), "missing.xlsx")
}

func TestExcelRepository_MissingColumns(t *testing.T) {
	path := writeWorkbook(t, []interface{}{"name", "description", "address"})

	_, err := NewExcelRepository(path, "", discardLogger()).Attractions(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataLoad)
	assert.Contains(t, err.Error(), "missing required columns: cultural tip, entry fee, location")
}

func TestExcelRepository_UnknownSheet(t *testing.T) {
	path := writeWorkbook(t, header)

	_, err := NewExcelRepository(path, "Attractions", discardLogger()).Attractions(context.Background())
	assert.ErrorIs(t, err, ErrDataLoad)
}

func TestRecordsFromRows_Empty(t *testing.T) {
	_, err := recordsFromRows(nil)
	assert.EqualError(t, err, "workbook has no header row")

	records, err := recordsFromRows([][]string{{"name", "cultural tip", "description", "entry fee", "address", "location", "duration", "open time", "close time", "category"}})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Open daily except Fridays", cleanText("  Open daily\r\nexcept\t Fridays \n"))
	assert.Equal(t, "", cleanText(" \n "))
}

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Attractions(ctx context.Context) ([]types.AttractionRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.AttractionRecord), args.Error(1)
}

func TestCachedRepository_LoadsOnce(t *testing.T) {
	records := []types.AttractionRecord{{Name: "Karnak Temple"}}
	source := new(MockRepository)
	source.On("Attractions", mock.Anything).Return(records, nil).Once()

	repo := NewCachedRepository(source, "Kemet_Data.xlsx", 0, discardLogger())
	for i := 0; i < 3; i++ {
		got, err := repo.Attractions(context.Background())
		require.NoError(t, err)
		assert.Equal(t, records, got)
	}
	source.AssertExpectations(t)
}

func TestCachedRepository_DoesNotCacheFailures(t *testing.T) {
	records := []types.AttractionRecord{{Name: "Abu Simbel"}}
	loadErr := &LoadError{Path: "Kemet_Data.xlsx", Err: errors.New("permission denied")}

	source := new(MockRepository)
	source.On("Attractions", mock.Anything).Return(nil, loadErr).Once()
	source.On("Attractions", mock.Anything).Return(records, nil).Once()

	repo := NewCachedRepository(source, "Kemet_Data.xlsx", time.Hour, discardLogger())

	_, err := repo.Attractions(context.Background())
	assert.ErrorIs(t, err, ErrDataLoad)

	got, err := repo.Attractions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records, got)
	source.AssertExpectations(t)
}

func TestCachedRepository_Invalidate(t *testing.T) {
	first := []types.AttractionRecord{{Name: "Philae"}}
	second := []types.AttractionRecord{{Name: "Philae"}, {Name: "Edfu"}}

	source := new(MockRepository)
	source.On("Attractions", mock.Anything).Return(first, nil).Once()
	source.On("Attractions", mock.Anything).Return(second, nil).Once()

	repo := NewCachedRepository(source, "Kemet_Data.xlsx", 0, discardLogger())

	got, err := repo.Attractions(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)

	repo.invalidate()

	got, err = repo.Attractions(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	source.AssertExpectations(t)
}
