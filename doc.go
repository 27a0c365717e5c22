// The [notion] package is a client for the Notion REST API built on a typed,
// immutable object model.
//
// # Object Model
//
// Blocks, pages and property values are plain immutable values. They are read
// from decoded JSON with the FromMap functions of
// [github.com/notion-sdk/notion-go/pkg/blocks],
// [github.com/notion-sdk/notion-go/pkg/pages] and
// [github.com/notion-sdk/notion-go/pkg/properties], changed with methods that
// return a modified copy, and written back with ToMap (full representation)
// or ToUpdateMap (the partial payload of an update request).
//
// # Client
//
// [New] wraps an HTTP connection configured with
// [github.com/notion-sdk/notion-go/pkg/connection.Config]. [FromEnv] and
// [FromConfigFile] build the configuration from NOTION_TOKEN, NOTION_BASE_URL
// and NOTION_VERSION, and from a YAML file.
//
// Requests that fail with a non-2xx status return a
// [github.com/notion-sdk/notion-go/pkg/connection.APIError], which matches
// [github.com/notion-sdk/notion-go/pkg/constants.ErrAPI].
package notion
