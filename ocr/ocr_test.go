//go:build ocr

package ocr

import "testing"

func TestNew(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	if client == nil {
		t.Error("Expected non-nil client")
	}
}

func TestRecognize(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	// The test image is a bare rectangle; only check that recognition runs.
	items, err := client.Recognize(createTestPNG(100, 50))
	if err != nil {
		t.Fatalf("Recognize failed: %v", err)
	}
	if items == nil {
		t.Error("Recognize() = nil, want empty slice")
	}
}

func TestRecognize_NotAnImage(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	if _, err := client.Recognize([]byte("%PDF-1.4")); err == nil {
		t.Error("Recognize() error = nil, want error")
	}
}

func TestClose(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}

	if err := client.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}

	client.client = nil
	if err := client.Close(); err != nil {
		t.Errorf("Close on nil client failed: %v", err)
	}
}
