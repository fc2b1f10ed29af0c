package bq

var ToSavers = toSavers
