// Package ocr turns scanned timetable images into positioned text items.
//
// Some sheets are published as scans rather than as text PDFs. Recognition
// runs Tesseract through gosseract at word level; each word box becomes a
// [model.Item] in PDF user space, scaled to the page width and with y
// flipped so that it grows upward. The result feeds the same table builders
// as decoded PDF text.
//
// Recognition requires the "ocr" build tag and an installed Tesseract with
// Russian language data:
//
//	go build -tags ocr
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-rus
//
// Without the tag [New] returns [ErrOCRNotEnabled]. The geometry helpers in
// this package are available in both builds.
package ocr
