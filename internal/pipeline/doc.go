// Package pipeline turns an uploaded image into translated output images.
//
// A submission is decoded, upscaled and passed to the region detector. Each
// detection then goes through a Stage, one at a time in detector order:
//
//  1. crop the upscaled image to the region
//  2. grayscale and binarize with an Otsu threshold
//  3. OCR with the configured language set
//  4. lowercase and correct the text
//  5. translate, unless the text is empty
//
// The records are rendered twice, as an outline overlay and as a copy with
// the text replaced, and both images are returned as data URIs together
// with the records.
//
// # Failures
//
// Undecodable input, detector errors and encoding errors abort the
// submission. A region that cannot be cropped is skipped. OCR and
// translation errors leave the region's text empty unless the pipeline is
// strict, in which case they abort. Correction never fails.
package pipeline
