package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"PaintPot/internal/imgio"
	"PaintPot/internal/net"
	"PaintPot/internal/raster"
	"PaintPot/internal/session"
	"PaintPot/internal/ui"
)

const sharePort = 8877

func main() {
	var (
		source    = flag.String("image", "", "line art to color: a file path or an http(s) URL")
		threshold = flag.Int("threshold", 200, "luminance cutoff for boundary pixels (0-255)")
		dilate    = flag.Int("dilate", 1, "boundary dilation radius in pixels")
		blur      = flag.Bool("blur", false, "blur before thresholding (for noisy scans)")
		edges     = flag.Bool("edges", false, "detect edges instead of thresholding dark lines")
		restore   = flag.String("restore", "", "snapshot file to resume from")
		autosave  = flag.String("autosave", "", "snapshot file updated after every stroke or fill")
		share     = flag.Bool("share", false, "serve a live view of the artwork on the LAN")
	)
	flag.Parse()

	if *source == "" {
		fmt.Fprintln(os.Stderr, "usage: paintpot -image <file-or-url> [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	img, err := imgio.Load(*source)
	if err != nil {
		log.Fatalf("Failed to load artwork: %v", err)
	}

	opts := raster.Options{
		Threshold:      clampThreshold(*threshold),
		DilationRadius: *dilate,
		GaussianBlur:   *blur,
		EdgeDetection:  *edges,
	}
	s := session.New(img, opts)

	if *restore != "" {
		data, err := imgio.ReadSnapshot(*restore)
		if err != nil {
			log.Printf("No snapshot to resume from: %v", err)
		} else if err := s.Restore(bytes.NewReader(data)); err != nil {
			// A mismatched snapshot must not corrupt the fresh
			// surface; start blank instead.
			log.Printf("Snapshot does not match this artwork, starting blank: %v", err)
		} else {
			log.Printf("Resumed from %s", *restore)
		}
	}

	var hub *net.Hub
	shareLink := ""
	if *share {
		hub = net.NewHub()
		go func() {
			if err := hub.Serve(sharePort); err != nil {
				log.Printf("Live view server stopped: %v", err)
			}
		}()
		if server, err := net.Advertise(sharePort); err != nil {
			log.Printf("mDNS advertise failed: %v", err)
		} else {
			defer server.Shutdown()
		}
		if ip, err := net.OutgoingIP(); err == nil {
			shareLink = fmt.Sprintf("http://%s:%d/", ip, sharePort)
			log.Printf("Sharing live view at %s", shareLink)
		}
	}

	s.OnChanged = func(snapshot []byte) {
		if *autosave != "" {
			if err := imgio.SaveSnapshot(*autosave, snapshot); err != nil {
				log.Printf("Autosave failed: %v", err)
			}
		}
		if hub != nil {
			hub.Broadcast(snapshot)
		}
	}
	s.OnFill = func(filled int) {
		log.Printf("Filled %d pixels", filled)
	}

	ui.RunApp(s, shareLink)
}

func clampThreshold(t int) uint8 {
	if t < 0 {
		return 0
	}
	if t > 255 {
		return 255
	}
	return uint8(t)
}
