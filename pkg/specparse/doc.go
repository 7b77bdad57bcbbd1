// Package specparse loads the YAML registries that back channel id
// resolution: the known measurement kind names and axis/component
// modifier names from the sysfs channel naming convention.
//
// A default registry is embedded in the library; hosts tracking a
// newer kernel can load their own table with LoadChannelRegistry and
// pass it to Resolve directly.
package specparse
