// Package prof provides profiling utilities for the streambuf library.
//
// This package wraps [runtime/pprof] with simplified APIs for verifying
// the library's no-allocation contract and measuring its copy costs. It is
// conditionally compiled using the "profile" build tag:
//
//	go build -tags profile
//	go test -tags profile
//
// When built without the "profile" tag, all exported functions become
// no-ops, allowing profiling code to remain in place without overhead in
// production. The stubs also keep the library free of ambient I/O: only a
// profile-tagged build ever touches the filesystem.
//
// # CPU Profiling
//
// CPU profiling streams samples to a writer and requires explicit
// start/stop:
//
//	prof.StartCPU("cpu.prof")
//	defer prof.StopCPU()
//	// ... buffer workload ...
//
// Attempting to start CPU profiling while already active returns
// [ErrCPUProfileActive].
//
// # Allocation Snapshots
//
// Heap profiles capture a point-in-time snapshot; [ProfileAllocs] is the
// one to reach for when checking that a buffer workload allocated nothing:
//
//	prof.Write(prof.ProfileAllocs, "allocs.prof")
package prof
