// Package lvcolor is a small numeric toolkit for color-managed imaging
// pipelines: blackbody chromaticity lookup and 3×3 transform algebra.
//
// What is lvcolor?
//
//	Two independent, allocation-free building blocks:
//		• locus: CIE (x, y) of a blackbody from 1000 K to 40000 K, linearly
//		  interpolated from embedded 2° and 10° observer tables
//		• matrix: Matrix3 value type with rotations, scaling, 2D translation,
//		  composition, transpose, point transform and LU-based inversion
//
// Why lvcolor?
//
//   - Value semantics: Matrix3 is an array, copies never share storage
//   - Explicit failures: sentinel errors matched with errors.Is
//   - Read-only tables: safe for any number of concurrent readers
//
// Layout:
//
//	locus/        Planckian locus lookup, tables and sweeps
//	matrix/       Matrix3, LU inversion, binary codec, printers
//	config/       dotenv + environment settings for the CLI
//	logger/       slog handler used by the CLI
//	cmd/lvcolor/  command line front end
//	examples/     runnable scenarios (white balance via Bradford adaptation)
//
// Quick example:
//
//	c, _ := locus.At2Degrees(6500)      // (0.3155, 0.327)
//	m := matrix.Product(matrix.Translation(10, 20), matrix.Scaling(2, 2, 1))
//	inv, err := matrix.Inverse(m)       // err wraps matrix.ErrSingular on failure
//
//	go install github.com/katalvlaran/lvcolor/cmd/lvcolor@latest
package lvcolor
