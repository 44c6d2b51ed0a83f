// Package flo draws the two widgets of the Flo water-intake tracker.
//
// The chart package renders a week of samples as a line graph over a
// gradient panel with a clipped wash under the curve. The gauge package
// renders today's counter as a thick arc with one tick per unit of the
// daily goal.
//
// Both renderers draw on a [Canvas], which is satisfied by *gg.Context for
// raster output and by the adapter returned from [NewRecorderCanvas] for
// command recordings:
//
//	dc := gg.NewContext(300, 250)
//	defer dc.Close()
//	if err := chart.Render(dc, chart.DefaultInput()); err != nil {
//		return err
//	}
//	_ = dc.SavePNG("week.png")
//
// Renderers validate their input and compute all geometry before the
// first drawing call. When they return an error the canvas is untouched.
// The errors are the sentinels declared in this package, wrapped with
// the offending values; match them with errors.Is.
//
// The view package holds widget state with invalidation callbacks, the
// snapshot package renders straight to encoded bytes, and the service
// package serves both widgets over NATS.
//
// # Logging
//
// flo is silent by default. Call [SetLogger] to receive structured logs.
package flo
