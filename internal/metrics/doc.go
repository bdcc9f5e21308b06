// Package metrics provides Prometheus metrics for dataset and snapshot runs.
//
// Key metrics:
//   - Exchange API requests by endpoint and status, with latency
//   - Rows built by price source
//   - Markets skipped by stage
//   - Markets discovered and run duration
//
// The tools are batch jobs, so metrics are collected on a private registry
// and pushed to a Pushgateway at the end of a run instead of being scraped.
package metrics
