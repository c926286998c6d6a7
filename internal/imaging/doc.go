// Package imaging holds the pixel operations of the translation pipeline:
// decoding uploads, upscaling, cropping, binarization for OCR, colour and
// edge masks for region detection, drawing primitives and encoding results
// back to data URIs.
//
// Coordinates are 0-based with (0,0) at the top-left. Regions use an
// inclusive top-left and exclusive bottom-right. Masks are indexed [y][x]
// relative to the image origin.
//
// Every function is stateless. None of them modify their input image except
// the drawing primitives, which paint on the destination they are given.
package imaging
