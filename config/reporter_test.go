package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReportClose_RemovesStoredDirs(t *testing.T) {
	reportFile, err := os.CreateTemp("", "f2v-test-report-*.zip")
	if err != nil {
		t.Fatalf("failed to create temp report file: %v", err)
	}
	defer os.Remove(reportFile.Name())

	r := &Report{
		entries: make(map[string]entry),
		file:    reportFile,
	}

	// directories standing in for extraction/rasterization work dirs
	dir1, err := os.MkdirTemp("", "f2v-test-work1-")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	dir2, err := os.MkdirTemp("", "f2v-test-work2-")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir1, "frames.txt"), []byte("file 'frame1.png'\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	// a regular file entry must survive Close
	tmpFile, err := os.CreateTemp("", "f2v-test-stored-")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()
	defer os.Remove(tmpFile.Name())

	r.Store("work-1", dir1)
	r.Store("work-2", dir2)
	r.Store("final.log", tmpFile.Name())

	if err := r.Close(); err != nil {
		t.Fatalf("Report.Close() error: %v", err)
	}

	if _, err := os.Stat(dir1); !os.IsNotExist(err) {
		os.RemoveAll(dir1)
		t.Error("stored directory survived Close")
	}
	if _, err := os.Stat(dir2); !os.IsNotExist(err) {
		os.RemoveAll(dir2)
		t.Error("stored directory survived Close")
	}
	if _, err := os.Stat(tmpFile.Name()); err != nil {
		t.Errorf("stored file should not be removed, got: %v", err)
	}
}

func TestReportStoreCopy_CleansStagingDir(t *testing.T) {
	reportFile, err := os.CreateTemp("", "f2v-test-report-*.zip")
	if err != nil {
		t.Fatalf("failed to create temp report file: %v", err)
	}
	defer os.Remove(reportFile.Name())

	r := &Report{entries: make(map[string]entry), file: reportFile}

	src := filepath.Join(t.TempDir(), "frames.txt")
	if err := os.WriteFile(src, []byte("file 'frame1.png'\n"), 0644); err != nil {
		t.Fatalf("failed to write source file: %v", err)
	}

	if err := r.StoreCopy("concat/clip.txt", src); err != nil {
		t.Fatalf("StoreCopy() error: %v", err)
	}
	// the copy lands inside a per-call staging directory
	staging := filepath.Dir(r.entries["concat/clip.txt"].actual)
	if _, err := os.Stat(staging); err != nil {
		t.Fatalf("staging directory missing before Close: %v", err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Report.Close() error: %v", err)
	}

	if _, err := os.Stat(staging); !os.IsNotExist(err) {
		os.RemoveAll(staging)
		t.Error("staging directory survived Close")
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("original file should not be removed, got: %v", err)
	}
}

func TestReportStoreData(t *testing.T) {
	reportFile, err := os.CreateTemp("", "f2v-test-report-*.zip")
	if err != nil {
		t.Fatalf("failed to create temp report file: %v", err)
	}
	defer os.Remove(reportFile.Name())

	r := &Report{entries: make(map[string]entry), file: reportFile}
	r.StoreData("ffmpeg/clip.stderr.log", []byte("encoder noise"))

	if _, exists := r.entries["ffmpeg/clip.stderr.log"]; !exists {
		t.Error("StoreData() did not record the entry")
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Report.Close() error: %v", err)
	}

	fi, err := os.Stat(reportFile.Name())
	if err != nil || fi.Size() == 0 {
		t.Errorf("report archive empty after Close: %v", err)
	}
}

func TestReportNilReceiver(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	if err := r.StoreCopy("x", "y"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	r.Store("x", "y")
	r.StoreData("x", nil)
	if r.Name() != "" {
		t.Error("Name on nil report should be empty")
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
