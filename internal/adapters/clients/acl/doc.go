// Package acl is the anti-corruption layer between the service and its
// upstream APIs: Gemini for location extraction and image assessment, Mapbox
// for geocoding, Bluesky for the public social feed, and arbitrary hosts for
// report images.
//
// Each adapter embeds [BaseAdapter], which runs requests through the
// resilient [clients.Client] and turns failures into domain errors:
//
//   - transport failures, open circuits and exhausted retries become
//     [domain.ErrUnavailable]
//   - non-2xx responses become a [StatusError], which also unwraps to
//     [domain.ErrUnavailable]
//   - upstream payloads are decoded into unexported DTOs and translated
//     into domain types; records the domain cannot use are dropped
//
// Upstream failures are never the caller's fault, so none of them map to a
// 4xx. The one exception is a model answer with no location in it, which is
// a validation error on the caller's description.
//
// [CachedLocationExtractor] and [CachedGeocoder] decorate the Gemini and
// Mapbox adapters with a [ports.LookupCache].
package acl
