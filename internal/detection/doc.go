// Package detection finds candidate text regions in a preprocessed image.
//
// Every detector implements Detector and reports model.Detection values in
// absolute pixel coordinates of the image it was given, with a confidence
// in [0, 1]. Three implementations are provided:
//
//   - BorderDetector: regions drawn as coloured (red by default) rectangular
//     frames. Confidence is the rectangularity of the frame.
//   - DensityDetector: unmarked text found by Sobel edge density and
//     horizontal structure. Confidence blends both.
//   - HTTPDetector: an external inference service, for a trained model.
//
// In-process detectors return their results in reading order (top to
// bottom, then left to right). Filter drops detections below a confidence
// threshold and those with an empty region.
//
// # Coordinate System
//
// Origin (0, 0) at top-left, X rightward, Y downward. Box corners use an
// inclusive top-left and exclusive bottom-right.
package detection
