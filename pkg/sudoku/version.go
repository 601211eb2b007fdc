package sudoku

// Version is the gridlock release version.
const Version = "0.1.0"
