package metrics

const Namespace = "captive_portal"
