package jobs

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/levarentz132/storing/service"
)

type fakeReporter struct {
	rows      []service.LowStockRow
	err       error
	threshold int
}

func (f *fakeReporter) LowStock(_ context.Context, threshold int) ([]service.LowStockRow, error) {
	f.threshold = threshold
	return f.rows, f.err
}

func TestLowStockJob_LogsItems(t *testing.T) {
	var buf bytes.Buffer
	rep := &fakeReporter{rows: []service.LowStockRow{
		{ItemCode: "A1", NamaBarang: "Baut", Quantity: 0, StatusStok: "EMPTY"},
		{ItemCode: "B2", NamaBarang: "Mur", Quantity: 2, StatusStok: "LOW"},
	}}
	job := LowStockJob{Reporter: rep, Threshold: 3, Logger: log.New(&buf, "", 0)}

	job.Run()

	if rep.threshold != 3 {
		t.Errorf("threshold = %d, want 3", rep.threshold)
	}
	out := buf.String()
	for _, want := range []string{"2 barang <= 3", "A1", "EMPTY", "B2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestLowStockJob_Error(t *testing.T) {
	var buf bytes.Buffer
	job := LowStockJob{Reporter: &fakeReporter{err: errors.New("db down")}, Logger: log.New(&buf, "", 0)}

	job.Run()

	if !strings.Contains(buf.String(), "db down") {
		t.Errorf("log = %q, want the error", buf.String())
	}
}

func TestNewScheduler(t *testing.T) {
	job := LowStockJob{Reporter: &fakeReporter{}}

	c, err := NewScheduler("@every 1h", job)
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	if n := len(c.Entries()); n != 1 {
		t.Errorf("entries = %d, want 1", n)
	}

	c, err = NewScheduler("", job)
	if err != nil || len(c.Entries()) != 0 {
		t.Errorf("empty schedule: entries = %d err = %v, want 0 nil", len(c.Entries()), err)
	}

	if _, err := NewScheduler("bukan cron", job); err == nil {
		t.Error("invalid schedule: want error")
	}
}
