/*
Package blockscene renders a field of cube blocks laid out on a sparse grid.

Every block is a WorldTransform living in archetype storage built on
github.com/TheBitDrifter/table. Each frame the scene rebuilds the block's world
matrix from its scale, rotation and translation (see package affine), hands it
to the rendering backend and issues one model draw per block.

The engine itself (device, input, audio, textures, draw phases, the debug
camera) is injected through Services, so the scene runs the same against a
window, a software rasterizer or a test double.

Core Concepts:

  - Cell: a row/column position in the grid.
  - Block: a storage entry occupying one cell.
  - Component: a data container attached to blocks (WorldTransform, Spin).
  - Pattern: a predicate deciding which cells get a block.
  - Cursor: walks occupied cells in row-major order.

Basic Usage:

	scene, err := blockscene.Factory.NewScene(services, blockscene.DefaultConfig())
	if err != nil {
		return err
	}
	if err := scene.Initialize(); err != nil {
		return err
	}
	defer scene.Close()

	for running {
		if err := scene.Update(); err != nil {
			return err
		}
		scene.Draw()
	}
*/
package blockscene
