package server

// Version is the server version reported in the Server response header. It is
// overridden at build time with -ldflags "-X .../server.Version=...".
var Version = "dev"
