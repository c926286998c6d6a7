// Package ocr recognizes text in image crops using Tesseract.
//
// The engine is reached through gosseract/v2. Every call creates its own
// Tesseract client, so one Tesseract value can serve concurrent requests.
// Crops are passed in memory as PNG; no temporary files are written.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr
//   - macOS: brew install tesseract
//
// Language data files are required for each configured language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr-eng tesseract-ocr-chi-sim
//
// # Languages
//
// The default set is English plus simplified Chinese ("eng+chi_sim"), so a
// single pass reads mixed Latin and CJK text. Any Tesseract language codes
// can be configured; TessdataPrefix points at a non-standard data directory.
//
// # Results
//
// Recognize returns trimmed text. An empty string means nothing legible was
// found and is not an error.
package ocr
