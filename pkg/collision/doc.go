// Package collision implements the AABB-vs-AABB overlap test used to
// reject a candidate tile placement, and the world-cube boundary check
// used to reject tiles that would fall outside the engine's usable
// volume.
package collision
