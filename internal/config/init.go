package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultConfig is the starter business.yaml written by `sitesync init`.
const defaultConfig = `# Business facts synced into the site pages.
# Run "sitesync sync" after editing this file.

name: "Copper Kettle Cafe"
short_name: "Copper Kettle"
url: "https://www.copperkettlecafe.example"
tagline: "Fresh coffee and baked goods, every morning"
description: "A neighborhood cafe serving espresso drinks, loose-leaf tea, and pastries baked in house each morning."
price_range: "$$"
serves_cuisine: "Cafe"

address:
  street: "412 Harbor Lane"
  city: "Port Ellison"
  region: "Washington"
  region_code: "WA"
  postal_code: "98339"
  country: "United States"
  country_code: "US"

phone:
  display: "(360) 555-0142"
  tel: "+13605550142"

coordinates:
  latitude: 47.8554
  longitude: -122.5803

hours:
  - { day: Monday, closed: true }
  - { day: Tuesday, open: "09:30", close: "17:00" }
  - { day: Wednesday, open: "09:30", close: "17:00" }
  - { day: Thursday, open: "09:30", close: "17:00" }
  - { day: Friday, open: "09:30", close: "17:00" }
  - { day: Saturday, open: "09:00", close: "17:00" }
  - { day: Sunday, closed: true }

images:
  default_image: "img/storefront.jpg"

# Uncomment while the shop is temporarily closed. The message may use
# inline Markdown.
# temporary_closure:
#   start_date: "2026-09-01"
#   end_date: "2026-09-14"
#   message: "Closed for our **annual maintenance break**."
`

// Init writes a starter configuration file. It refuses to overwrite an
// existing file unless force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
