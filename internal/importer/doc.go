// Package importer reads events out of HTML tables.
//
// Every top-level <table> in the document is scanned; tables nested
// inside a cell are read as that cell's text. Each row with <td> cells is read
// as name, start, end, location, description (the last two optional); rows
// made only of <th> cells are treated as headers and skipped. Dates use the
// lenient layouts accepted by event.ParseDateTime. Every imported event gets
// a fresh UUID.
package importer
