// Package coord provides the point and direction primitives shared by the
// rest of the generation pipeline: the fixed cardinal offset order and the
// eight-way compass used for neighbor traversal.
package coord
