package ocr

import "testing"

func TestCollate(t *testing.T) {
	text, conf := Collate([]Line{
		{Text: "John Doe", Confidence: 99},
		{Text: "Software Engineer", Confidence: 97},
		{Text: "New York", Confidence: 98},
	})
	if text != "John Doe\nSoftware Engineer\nNew York" {
		t.Fatalf("unexpected text: %q", text)
	}
	if conf != 98 {
		t.Fatalf("expected mean confidence 98, got %v", conf)
	}
}

func TestCollateBlankPage(t *testing.T) {
	text, conf := Collate(nil)
	if text != "" || conf != 0 {
		t.Fatalf("zero lines must yield empty text and confidence 0, got %q / %v", text, conf)
	}
}
