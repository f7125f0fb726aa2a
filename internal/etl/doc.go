// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

/*
Package etl implements the offline index-building pipeline.

The pipeline makes two streaming passes over the raw dataset. The first
scans business records, trims and filters their categories against the
fixed vocabulary, and produces the business-to-categories index together
with its category-to-businesses inverse. The second scans review records
and counts, per category and user, the reviews at or above the positive
star threshold.

Because the raw dataset can be far larger than memory, the inspection
indexes flow through capacity-bounded chunked writers that flush plain-text
shards and clear themselves, keeping peak memory proportional to the chunk
capacity rather than the dataset. The complete business index and the
category review index are additionally materialized as single consolidated
JSON artifacts, which are the only files the online engine loads.

A corrupt record never aborts the pipeline: malformed lines, missing ids,
and reviews for unknown businesses are counted and skipped.
*/
package etl
