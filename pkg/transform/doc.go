// Package transform applies axis-aligned 90° rotation and integer
// translation to a qmap.Map: face points, entity origins, entity facing
// angles, and the face texture parameters that encode how a texture is
// aligned to a brush face. Both operations mutate their argument in place,
// matching the reference generator's Brush.rotate/Brush.move, which are
// used exactly this way — on a scratch clone, never on the root map
// directly (see pkg/assembly).
package transform
