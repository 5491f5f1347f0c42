package config

// Specification of how text segments of frame names are compared when
// ordering: "fold" ignores case (what the classic tools do), "exact" keeps it.
// ENUM(fold, exact)
type SortCase int
