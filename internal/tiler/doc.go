// Package tiler cuts a raster image into a row of fixed-size square tiles.
//
// The source is normalized before cutting: it is converted to NRGBA so every
// pixel carries alpha, and scaled so its height equals TileSize. The result is
// then cut left to right into TileSize x TileSize tiles. A final tile that is
// narrower than TileSize is placed at the top-left of a fully transparent
// canvas, so every output file has the same dimensions.
//
// # Output Naming
//
// Tiles are written as PNG files named tile_0.png, tile_1.png, ... in cut
// order. A run producing N tiles writes exactly tile_0 through tile_{N-1};
// consumers may rely on the sequence having no gaps.
//
// # Errors
//
// Every failure is one of three types:
//   - *DecodeError: the source is missing, unreadable, undecodable or empty
//   - *DirectoryCreateError: the output directory cannot be created
//   - *WriteError: a tile file cannot be written
//
// Nothing is retried or cleaned up. Tiles already written when a WriteError
// occurs remain on disk.
//
// # Concurrency
//
// Split runs synchronously on the calling goroutine and blocks on file I/O.
// Callers with an interactive loop should run it on a separate goroutine and
// must not run two splits into the same directory at once.
package tiler
