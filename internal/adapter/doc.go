// Package adapter is a Go client for the resource service HTTP API.
//
// [NewHTTPResourceAdapter] accepts a "host:port" address or a full URL and
// returns a [ResourceAdapter]:
//
//	client, err := adapter.NewHTTPResourceAdapter("localhost:8080", 5*time.Second, log)
//	if err != nil {
//		return err
//	}
//
//	created, err := client.CreateResource(ctx, models.ResourceCreate{Name: "Widget", Tags: []string{"a", "b"}})
//	page, err := client.ListResources(ctx, models.ListQuery{Tag: "a", Limit: 20})
//
// Failed requests return errors matching [ErrBadRequest], [ErrNotFound],
// [ErrPayloadTooLarge] or [ErrInternalServerError]. A 400 response is decoded
// into [*ValidationError]. [WithTraceID] forwards a trace id in X-Trace-ID.
package adapter
