package constants

// Cache key prefixes. Every key carries the app prefix so DeletePattern
// invalidation never touches foreign keys in a shared Redis.
const (
	CacheKeyLocationList = "unibus:locations:list"
	CacheKeyLocation     = "unibus:locations:id:" // + location id
	CacheKeyTimeList     = "unibus:times:list"
	CacheKeyTime         = "unibus:times:id:"  // + time entry id
	CacheKeyTripList     = "unibus:trips:list"
	CacheKeyTrip         = "unibus:trips:id:"  // + trip id
	CacheKeyTripsByBus   = "unibus:trips:bus:" // + bus id

	CachePatternLocations = "unibus:locations:*"
	CachePatternTimes     = "unibus:times:*"
	CachePatternTrips     = "unibus:trips:*"
)
