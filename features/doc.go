// Package features selects significant persistence pairs by a lifetime
// threshold and enumerates, for each, the input points that participate in
// it via a radius query on the point cloud.
package features
