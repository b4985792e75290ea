// Package domain models products, orders and order batches.
//
// Products come in two variants, PrintedBook and Merchandising, each with its
// own benefit audit. An Order holds up to MaxOrderItems lines and renders a
// bill; an OrderBatch groups up to MaxBatchSize orders and answers bulk
// queries and reports over them.
//
// Nothing in this package is safe for concurrent use. Callers sharing an
// Order or an OrderBatch between goroutines must serialize access to it.
package domain
