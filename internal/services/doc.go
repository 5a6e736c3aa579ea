// Package services fetches and normalizes YouTube video statistics.
//
// # Parsing
//
// [ExtractVideoID] accepts watch, short-link and embed URLs or a bare 11 character ID.
// [FormatDuration] renders content durations ("PT1H2M3S") as clock strings ("1:02:03").
//
// # Provider
//
// The upstream API sits behind the narrow [Provider] interface so the normalization
// logic can be exercised with fixture payloads. [DataAPIProvider] implements it with
// google.golang.org/api/youtube/v3 and an API key.
//
// # Normalizer
//
// [Normalizer.Fetch] validates the ID, issues one provider call and reshapes the first
// item into a [models.VideoRecord]. Hidden statistics degrade to zero. There is no
// caching and no retry.
//
// # Error Handling
//
// Failures wrap sentinels from the shared package:
//   - [shared.ErrInvalidVideoID] : ID does not match the canonical grammar
//   - [shared.ErrNotConfigured] : no API key
//   - [shared.ErrVideoNotFound] : provider returned no items
//   - [shared.ErrQuotaExceeded] : provider quota exhausted
//   - [shared.ErrUnknown] : anything else, wrapping the underlying message
//
// [ClassifyError] and [UserMessage] turn these into an [ErrorKind] and a display message.
package services
