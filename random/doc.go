// Package random provides RandomSources for the reservoir sampler. Every sampling run
// owns its own source, so runs are reentrant and can be made reproducible by seeding.
package random
