// Package tags reads track identity from FLAC and MP3 tags and embeds lyrics into them.
package tags
