// Package ucmdbclient provides the primary entry point for constructing a
// UCMDB REST API client that implements the ucmdb.Client interface.
//
// It layers endpoint normalization, HTTP transport, authentication, and the
// version-compatibility gate on top of the resource interfaces and types
// defined in the ucmdb package. Most applications should import ucmdbclient to
// build a client, then use the returned ucmdb.Client to access
// resource-specific clients, for example Topology(), DataModel(), DataFlow(),
// etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/kwpaschal/ucmdb-rest/pkg/ucmdb"
//	  "github.com/kwpaschal/ucmdb-rest/pkg/ucmdbclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // With username/password: the client posts to /authenticate and keeps
//	  // the bearer token refreshed for you.
//	  cli, err := ucmdbclient.New(ctx, &ucmdb.Config{
//	    Endpoint: "cmdb.example.com",
//	    Username: "sysadmin",
//	    Password: "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a token you already have:
//	  cli, err = ucmdbclient.NewWithToken(ctx, "cmdb.example.com", "eyJhbGciOi...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the ucmdb.Client interface.
//	  result, err := cli.Topology().GetAllViewResults(ctx, "Oracle", 0)
//	  if err != nil { log.Fatal(err) }
//	  _ = result
//	}
//
// # Endpoints
//
// Endpoint may be a bare hostname, host:port, or a full URL. A missing scheme
// defaults to https, a missing port to 8443, and the /rest-api base path is
// appended when absent. Containerized deployments commonly listen on 443;
// pass "cmdb.example.com:443" for those.
//
// # TLS and development mode
//
// For lab servers with self-signed certificates, set Config.SkipTLSVerify.
// This is gated by the environment variable UCMDB_DEV_MODE to avoid
// accidental insecure usage in production environments.
//
// # Helpers
//
// The package also provides convenience constructors NewWithEndpoint,
// NewWithToken, and NewWithPassword that wrap New with the appropriate
// configuration.
package ucmdbclient
