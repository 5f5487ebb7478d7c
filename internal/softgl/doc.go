// Package softgl is a small fixed-pipeline software backend for blockscene.
//
// It rasterises flat-shaded triangles into an image.RGBA with a float depth
// buffer. A Device owns the frame, Phase brackets groups of draws, Constants
// receives uploaded matrices and CubeModel draws one cube per call.
package softgl
