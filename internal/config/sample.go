package config

// SampleConfig returns a fully documented configuration file
func SampleConfig() string {
	return `# SortFlow configuration
version: "1.0"

# File the scene scripts import the submitted array from.
handoff:
  path: "./animations/user_array.py"
  variable: "my_array"

# Containerised render invocation:
#   <runtime> run --rm -v <host_dir>:<mount_target> <image> \
#     <shell> -c "cd <mount_target>/<scenes_dir>/ && <renderer> [renderer_args] <scene>.py"
render:
  runtime: "docker"
  image: "manimce:latest"
  host_dir: ""            # empty: current working directory
  mount_target: "/AnimDir"
  scenes_dir: "animations"
  shell: "/bin/bash"
  renderer: "manim"
  renderer_args: []       # e.g. ["-qh"]; adjust playback.quality to match
  timeout: 0s             # 0 waits for the renderer indefinitely
  max_line_length: 1048576
  log_lines: 5000

# Player launched on <media_dir>/<scene>/<quality>/<SceneClass>.mp4
playback:
  player: "mpv"
  player_args: []
  media_dir: "animations/media/videos"
  quality: "1080p60"

output:
  default_format: "text"  # text|json|markdown|csv
  color_mode: "auto"      # auto|always|never
  theme: "default"        # default|high-contrast|minimal
  verbose: false
  log_file: ""            # where logs go while the terminal UI runs
`
}

// MinimalSampleConfig returns a compact configuration with essential settings
func MinimalSampleConfig() string {
	return `version: "1.0"
render:
  image: "manimce:latest"
  host_dir: ""
playback:
  player: "mpv"
`
}
