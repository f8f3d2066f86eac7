// Package ucmdb provides types, interfaces, and helpers for working with the
// Universal CMDB REST API.
//
// # Overview
//
// The ucmdb package defines the domain types (e.g., CI, Relation,
// TopologyResult, Policy, Probe) and the interfaces for resource-oriented
// clients (e.g., TopologyClient, DataModelClient, PoliciesClient). A concrete
// implementation of these clients is provided by the ucmdbclient package,
// which wires configuration, transport, and authentication. Most consumers
// should import ucmdbclient to construct a client and then interact with the
// resource client interfaces exposed here.
//
// Getting a client
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
//	  cli, err := ucmdbclient.New(ctx, &ucmdb.Config{
//	    Endpoint: "ucmdb.example.com",
//	    Username: "admin",
//	    Password: "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  view, err := cli.Topology().GetAllViewResults(ctx, "Node Compliance View", 0)
//	  if err != nil { log.Fatal(err) }
//	  _ = view
//	}
//
// # Version compatibility
//
// UCMDB servers report their version in two distinct formats: calendar
// releases ("2023.05") and quarterly content-pack releases ("24.2"). The
// ParseVersion and CompareVersions functions order both formats on a common
// timeline, and VersionGate caches the resolved version per server so that
// operations requiring a minimum server version can refuse to run against
// servers that are too old. Resolution failures are deliberately fail-open:
// if the server's version cannot be determined, the gated operation proceeds
// with a logged warning.
//
// # Chunked results
//
// Large topology and compliance result sets are returned by the server in
// bounded-size chunks. CollectAll drives the chunk protocol to completion and
// returns one flat, order-preserving slice; individual chunk failures are
// skipped rather than aborting the whole aggregation. CollectAllStats
// additionally reports how many chunks were dropped.
//
// # Errors
//
// API errors are represented by ResponseError. Helpers such as IsNotFound and
// IsUnauthorized make it easy to branch on common cases. A blocked gated
// operation surfaces a *VersionError naming the operation, both versions, and
// the server.
package ucmdb
