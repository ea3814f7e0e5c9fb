// Package layout owns the on-disk layout of a run: the application base
// directory, the output directory inside it, and the fixed or per-input
// output names. It also guards the output directory with a run lock and
// tracks output-path claims so two inputs that map to the same target are
// reported instead of silently overwriting each other.
//
//	<base>/bg.jpg                     default background image
//	<base>/output/merged_output.mp3   merge result
//	<base>/output/<stem>.mp4          one per converted input
package layout
