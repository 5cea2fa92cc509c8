// Package sourcestore provides access to raster sources held in blob
// storage and stages them as local files the engine can open by identifier.
//
// A Store abstracts where source objects live: LocalStore serves a
// filesystem directory, MemoryStore backs tests, and the minio and s3
// subpackages serve S3-compatible object storage. A Provisioner fetches a
// set of named objects from a Store into a staging directory, fanning out
// fetches with a bounded degree of parallelism, optionally rate limiting
// them, and transparently decompressing objects stored with a .gz or .lz4
// suffix.
//
// Staged paths feed directly into gdal.BuildVRTFromNames:
//
//	prov := sourcestore.NewProvisioner(store, stagingDir)
//	paths, err := prov.Stage(ctx, []string{"tiles/north.tif.gz", "tiles/south.tif.gz"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vrt, err := gdal.BuildVRTFromNames("mosaic.vrt", paths, nil)
package sourcestore
