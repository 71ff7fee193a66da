// SPDX-License-Identifier: MIT

// Package stats provides the descriptive statistics used to inspect and
// prepare data before it is fitted: central tendency (Mean, Median), dispersion
// (Variance, StandardDeviation), association (Covariance, Correlation) and
// bucketing (FindBin, Bin, Hist).
//
// Sample statistics use the n-1 denominator. Inputs are never modified.
package stats
