package ht

// imperial mechanical horsepower, W
const hp = 745.6998715822702

// minute, s
const minute = 60.0

// inch, m
const inch = 0.0254
