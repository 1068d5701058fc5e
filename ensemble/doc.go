// Package ensemble implements Ensemble, the indexable/iterable collection
// of realizations spec §4.8 describes, and its four per-cell reductions:
// mean, sample variance, empirical CDF, and order-statistic quantile.
// fetch is the identity for a synchronous Ensemble (every realization
// already computed) and a resolver callback for an asynchronous one (a
// realization computed on first Fetch and cached thereafter); both shapes
// share the same reduction code since reductions only ever call Fetch.
package ensemble
